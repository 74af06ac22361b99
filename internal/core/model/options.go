package model

var comboOptions = [...]string{"option1", "option2", "option3", "option4"}

// ComboOptions returns the fixed option catalog for the profile selector.
func ComboOptions() []string {
	return append([]string(nil), comboOptions[:]...)
}

// IsOption reports whether value belongs to the option catalog.
func IsOption(value string) bool {
	for _, option := range comboOptions {
		if option == value {
			return true
		}
	}
	return false
}
