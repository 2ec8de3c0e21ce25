package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/TakahikoKawasaki/nv-bluetooth/pkg/bleadv"
)

var (
	rootCmd = &cobra.Command{
		Use:   "bleadv-decode [hex]",
		Short: "Decode BLE advertising payloads",
		Long:  "bleadv-decode splits a raw BLE advertising or scan-response payload into typed AD structures.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := bleadv.NewParser()
			if len(args) == 0 {
				return runInteractive(parser)
			}
			return runDecode(parser, args[0])
		},
	}

	offset int
	length int
)

func init() {
	rootCmd.PersistentFlags().IntVar(&offset, "offset", 0, "byte offset of the first AD structure")
	rootCmd.PersistentFlags().IntVar(&length, "length", -1, "number of payload bytes to scan (-1 for the rest of the payload)")
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func runInteractive(parser *bleadv.Parser) error {
	scanner := bufio.NewScanner(os.Stdin)
	logrus.Info("bleadv decode mode. Paste a hex payload and press Enter (Ctrl+D to exit).")
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := runDecode(parser, line); err != nil {
			logrus.WithError(err).Error("failed to decode payload")
		}
	}
	return scanner.Err()
}

func runDecode(parser *bleadv.Parser, hexPayload string) error {
	structures, err := parseHexRange(parser, hexPayload)
	if err != nil {
		return err
	}
	fields := make([]map[string]any, len(structures))
	for i, s := range structures {
		fs := bleadv.NewFieldSet(s.Fields())
		if kind, err := fs.String("structure"); err == nil {
			logrus.WithFields(logrus.Fields{"index": i, "structure": kind}).Debug("decoded AD structure")
		}
		fields[i] = fs.Map()
	}
	out, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func parseHexRange(parser *bleadv.Parser, hexPayload string) ([]bleadv.ADStructure, error) {
	payload, err := bleadv.DecodeHex(hexPayload)
	if err != nil {
		return nil, err
	}
	scanLen := length
	if scanLen < 0 {
		scanLen = len(payload)
	}
	return parser.ParseRange(payload, offset, scanLen), nil
}
