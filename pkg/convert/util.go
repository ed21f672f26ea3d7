package convert

// Convenience function to get the point from a literal value
func RefOf[T any](value T) *T {
	return &value
}
