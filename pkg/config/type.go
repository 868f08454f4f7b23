package config

type MeterCollectorConfig struct {
	InterpreterAPIHost string `toml:"interpreter_api_host"`
	TLSEnabled         bool   `toml:"tls_enabled"`
}

type InterpreterAPIConfig struct {
	SerialDevice  string `toml:"serial_device"`
	Baudrate      uint   `toml:"baudrate"`
	ListenAddress string `toml:"listen_address"`
	ListenPort    int    `toml:"listen_port"`

	// IANA zone the meter clock runs in, e.g. Europe/Amsterdam or Europe/Brussels.
	TimeZone string `toml:"time_zone"`
	// Accept telegrams with a wrong or missing checksum.
	IgnoreChecksum bool `toml:"ignore_checksum"`
	// Merge the split gas reading of DSMR 2.2 and 3 meters.
	RepairMangled bool `toml:"repair_mangled"`
}
