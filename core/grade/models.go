package grade

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Entry is a single student's grade.
type Entry struct {
	Name  string `json:"name"`
	Grade string `json:"grade"`
}

// String renders the entry as a single-pair mapping, e.g. {'bhavya': 'A'}.
func (e Entry) String() string {
	return "{" + quote(e.Name) + ": " + quote(e.Grade) + "}"
}

// Sheet is an ordered snapshot of the registry.
type Sheet []Entry

func (s Sheet) Len() int { return len(s) }

func (s Sheet) Get(name string) (string, bool) {
	for _, e := range s {
		if e.Name == name {
			return e.Grade, true
		}
	}
	return "", false
}

// String renders the whole mapping, e.g. {'bhavya': 'A', 'dipti': 'A+'}.
func (s Sheet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quote(e.Name))
		b.WriteString(": ")
		b.WriteString(quote(e.Grade))
	}
	b.WriteByte('}')
	return b.String()
}

// MarshalJSON encodes the sheet as a JSON object, keeping sheet order.
func (s Sheet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Grade)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

var (
	singleQuoteReplacer = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`, "\t", `\t`)
	doubleQuoteReplacer = strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\r", `\r`, "\t", `\t`)
)

// quote wraps s in single quotes, or in double quotes when s holds a ' and no ".
func quote(s string) string {
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		return `"` + doubleQuoteReplacer.Replace(s) + `"`
	}
	return "'" + singleQuoteReplacer.Replace(s) + "'"
}

// SeedEntries returns the registry content at process start.
func SeedEntries() []Entry {
	return []Entry{
		{Name: "bhavya", Grade: "A"},
		{Name: "dipti", Grade: "A+"},
		{Name: "shivani", Grade: "D"},
		{Name: "ishupriya", Grade: "F"},
		{Name: "ansh", Grade: "B"},
		{Name: "ruchir", Grade: "C"},
	}
}
