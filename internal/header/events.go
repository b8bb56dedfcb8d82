package header

// eventNames maps SAME event codes to their broadcast descriptions.
// Not exhaustive; unknown codes are still valid headers.
var eventNames = map[string]string{
	"ADR": "Administrative Message",
	"AVW": "Avalanche Warning",
	"BZW": "Blizzard Warning",
	"CAE": "Child Abduction Emergency",
	"CDW": "Civil Danger Warning",
	"CEM": "Civil Emergency Message",
	"DMO": "Practice/Demo Warning",
	"EAN": "Emergency Action Notification",
	"EQW": "Earthquake Warning",
	"EVI": "Evacuation Immediate",
	"FFW": "Flash Flood Warning",
	"FLW": "Flood Warning",
	"FRW": "Fire Warning",
	"HUW": "Hurricane Warning",
	"HWW": "High Wind Warning",
	"NPT": "National Periodic Test",
	"RMT": "Required Monthly Test",
	"RWT": "Required Weekly Test",
	"SVR": "Severe Thunderstorm Warning",
	"SVA": "Severe Thunderstorm Watch",
	"TOA": "Tornado Watch",
	"TOR": "Tornado Warning",
	"TSW": "Tsunami Warning",
	"WSW": "Winter Storm Warning",
}

// originatorNames maps SAME originator codes to their descriptions.
var originatorNames = map[string]string{
	"CIV": "Civil Authorities",
	"EAS": "Broadcast Station or Cable System",
	"PEP": "Primary Entry Point System",
	"WXR": "National Weather Service",
}

// EventName returns the broadcast description for an event code.
func EventName(code string) (string, bool) {
	name, ok := eventNames[code]
	return name, ok
}

// OriginatorName returns the description for an originator code.
func OriginatorName(code string) (string, bool) {
	name, ok := originatorNames[code]
	return name, ok
}
