package gatt

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Service is one of the standard GATT services assigned a 16-bit number.
type Service struct {
	name      string
	shortType string
	number    int
}

const serviceTypePrefix = "org.bluetooth.service."

// serviceUUIDPattern matches a standard service UUID rendered with or
// without dashes and captures its 16-bit number.
var serviceUUIDPattern = regexp.MustCompile(
	`^0000([0-9a-fA-F]{4})-?0000-?1000-?8000-?00805[fF]9[bB]34[fF][bB]$`)

var services = []Service{
	{"Alert Notification Service", "alert_notification", 0x1811},
	{"Automation IO", "automation_io", 0x1815},
	{"Battery Service", "battery_service", 0x180F},
	{"Blood Pressure", "blood_pressure", 0x1810},
	{"Body Composition", "body_composition", 0x181B},
	{"Bond Management", "bond_management", 0x181E},
	{"Continuous Glucose Monitoring", "continuous_glucose_monitoring", 0x181F},
	{"Current Time Service", "current_time", 0x1805},
	{"Cycling Power", "cycling_power", 0x1818},
	{"Cycling Speed and Cadence", "cycling_speed_and_cadence", 0x1816},
	{"Device Information", "device_information", 0x180A},
	{"Environmental Sensing", "environmental_sensing", 0x181A},
	{"Generic Access", "generic_access", 0x1800},
	{"Generic Attribute", "generic_attribute", 0x1801},
	{"Glucose", "glucose", 0x1808},
	{"Health Thermometer", "health_thermometer", 0x1809},
	{"Heart Rate", "heart_rate", 0x180D},
	{"HTTP Proxy", "http_proxy", 0x1823},
	{"Human Interface Device", "human_interface_device", 0x1812},
	{"Immediate Alert", "immediate_alert", 0x1802},
	{"Indoor Positioning", "indoor_positioning", 0x1821},
	{"Internet Protocol Support", "internet_protocol_support", 0x1820},
	{"Link Loss", "link_loss", 0x1803},
	{"Location and Navigation", "location_and_navigation", 0x1819},
	{"Next DST Change Service", "next_dst_change", 0x1807},
	{"Object Transfer", "object_transfer", 0x1825},
	{"Phone Alert Status Service", "phone_alert_status", 0x180E},
	{"Pulse Oximeter", "pulse_oximeter", 0x1822},
	{"Reference Time Update Service", "reference_time_update", 0x1806},
	{"Running Speed and Cadence", "running_speed_and_cadence", 0x1814},
	{"Scan Parameters", "scan_parameters", 0x1813},
	{"Transport Discovery", "transport_discovery", 0x1824},
	{"Tx Power", "tx_power", 0x1804},
	{"User Data", "user_data", 0x181C},
	{"Weight Scale", "weight_scale", 0x181D},
}

var servicesByNumber = func() map[int]Service {
	m := make(map[int]Service, len(services))
	for _, s := range services {
		m[s.number] = s
	}
	return m
}()

// Name returns the service name, e.g. "Battery Service".
func (s Service) Name() string { return s.name }

// ShortType returns the last component of the specification type, e.g.
// "battery_service".
func (s Service) ShortType() string { return s.shortType }

// SpecificationType returns the full specification type, e.g.
// "org.bluetooth.service.battery_service".
func (s Service) SpecificationType() string { return serviceTypePrefix + s.shortType }

// Number returns the assigned 16-bit number, e.g. 0x180F.
func (s Service) Number() int { return s.number }

func (s Service) String() string { return s.name }

// ServiceByNumber looks up a standard service by its assigned number.
func ServiceByNumber(number int) (Service, bool) {
	s, ok := servicesByNumber[number]
	return s, ok
}

// ServiceByUUID looks up a standard service by its full UUID.
func ServiceByUUID(u uuid.UUID) (Service, bool) {
	return ServiceByUUIDString(u.String())
}

// ServiceByUUIDString looks up a standard service by a UUID string, with
// or without dashes, in either case.
func ServiceByUUIDString(s string) (Service, bool) {
	m := serviceUUIDPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Service{}, false
	}
	number, err := strconv.ParseInt(m[1], 16, 32)
	if err != nil {
		return Service{}, false
	}
	return ServiceByNumber(int(number))
}
