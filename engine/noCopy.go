package engine

// noCopy can be embedded to provide "go vet" linting
// when a type should not be copied but is
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
