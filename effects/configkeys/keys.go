package configkeys

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigCollatzPrefix        = ConfigPrefix + delimiter + "collatz"
	ConfigCollatzMaxN          = ConfigCollatzPrefix + delimiter + "max_n"
	ConfigCollatzOutputPath    = ConfigCollatzPrefix + delimiter + "output_path"
	ConfigCollatzMemoBackend   = ConfigCollatzPrefix + delimiter + "memo_backend"
	ConfigCollatzMemoCapacity  = ConfigCollatzPrefix + delimiter + "memo_capacity"
	ConfigCollatzProgressEvery = ConfigCollatzPrefix + delimiter + "progress_every"
)
