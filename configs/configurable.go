package configs

// Configurable is implemented by setting types that are read from one config path.
type Configurable interface {
	ConfigPath() string
}

// Resolve returns the value of the first file that sets T's path, or the zero value.
func Resolve[T Configurable](loader Loader) T {
	var zero T
	return First[T](loader, zero.ConfigPath())
}
