package kinds

import (
	"fmt"
	"strings"
)

// Encode renders a kind in a compact, parseable form used by the
// persistent resolution cache: "T" (type), "V:int" (value), "U"
// (universal), "M(T,V:int)" (template).
func Encode(k Kind) string {
	switch kk := k.(type) {
	case KType:
		return "T"
	case KUniversal:
		return "U"
	case KValue:
		return "V:" + string(kk.Of)
	case KTemplate:
		parts := make([]string, len(kk.Slots))
		for i, s := range kk.Slots {
			parts[i] = Encode(s)
		}
		return "M(" + strings.Join(parts, ",") + ")"
	}
	return "T"
}

// Decode parses the form produced by Encode.
func Decode(s string) (Kind, error) {
	k, rest, err := decode(s)
	if err != nil {
		return nil, err
	}
	if rest != "" {
		return nil, fmt.Errorf("trailing input %q in encoded kind", rest)
	}
	return k, nil
}

func decode(s string) (Kind, string, error) {
	switch {
	case strings.HasPrefix(s, "T"):
		return KType{}, s[1:], nil
	case strings.HasPrefix(s, "U"):
		return KUniversal{}, s[1:], nil
	case strings.HasPrefix(s, "V:"):
		rest := s[2:]
		end := len(rest)
		for i, c := range rest {
			if c == ',' || c == ')' {
				end = i
				break
			}
		}
		return KValue{Of: ValueType(rest[:end])}, rest[end:], nil
	case strings.HasPrefix(s, "M("):
		rest := s[2:]
		var slots []Kind
		for !strings.HasPrefix(rest, ")") {
			var slot Kind
			var err error
			slot, rest, err = decode(rest)
			if err != nil {
				return nil, "", err
			}
			slots = append(slots, slot)
			if strings.HasPrefix(rest, ",") {
				rest = rest[1:]
			}
		}
		return KTemplate{Slots: slots}, rest[1:], nil
	}
	return nil, "", fmt.Errorf("invalid encoded kind %q", s)
}
