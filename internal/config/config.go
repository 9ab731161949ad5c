package config

const (
	DefaultTimeZone = "Asia/Kolkata"

	// Fixed-property sheets regenerate on the first morning of every month.
	DefaultFixedPropSchedule = "0 6 1 * *"

	DefaultInventoryPort = 7143
	DefaultGatewayPort   = 8081

	DefaultOutputDir        = "./output"
	DefaultVerificationFile = "verification_summary.txt"
)
