package cmd

// defaultContainerVolume is the capacity used when the caller does not
// override it.
const defaultContainerVolume = 10

// Config carries the settings the composition root needs to build the
// aggregation services.
type Config struct {
	// ContainerVolume is the capacity of every container created by the
	// container aggregator.
	ContainerVolume int
}

// DefaultConfig returns the configuration the demo scenario runs with.
func DefaultConfig() Config {
	return Config{
		ContainerVolume: defaultContainerVolume,
	}
}
