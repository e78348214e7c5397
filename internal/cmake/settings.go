package cmake

// Setting renders an optional string property as a keyword argument.
// A present, non-empty value gives `TAG "value"`; anything else gives the
// placeholder `# TAG`.
func Setting(tag, value string, present bool) string {
	if present && value != "" {
		return tag + ` "` + EscapeString(value) + `"`
	}
	return Placeholder(tag)
}

// Flag renders an optional integer property as `TAG ON` or `TAG OFF`, or the
// placeholder `# TAG` when it is absent.
func Flag(tag string, value int, present bool) string {
	if !present {
		return Placeholder(tag)
	}
	if value != 0 {
		return tag + " ON"
	}
	return tag + " OFF"
}

// Placeholder is the commented-out form of a keyword argument.
func Placeholder(tag string) string {
	return "# " + tag
}

// Quoted wraps value in double quotes without escaping it.
func Quoted(value string) string {
	return `"` + value + `"`
}
