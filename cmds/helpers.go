package cmds

// Var defines name <value> setting the returned variable, and name. resetting
// it to the zero value.
func Var[T any](name string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}).Args("value"))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}))

	return &value
}

// Switch defines name turning the returned flag on and !name turning it off.
func Switch(name string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}))

	Define("!"+name, Func(func() {
		value = false
	}))

	return &value
}

func Collect[T any](name string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Args("value"))
	return &value
}
