package jucer

import "github.com/vk/jucer2cmake/internal/xmltree"

// ParseInt converts an attribute value the way the project editor does:
// leading whitespace is skipped, an optional sign is honoured and the
// leading run of digits is read. Anything without digits is 0.
func ParseInt(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}

func intProperty(n xmltree.Node, name string) (int, bool) {
	v, ok := n.Get(name)
	if !ok {
		return 0, false
	}
	return ParseInt(v), true
}
