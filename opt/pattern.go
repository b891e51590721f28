package opt

// Value type tags assigned by pattern codes. The parse engine treats them as
// opaque; they exist so collaborators can switch on a tag without magic
// strings.
const (
	TypeObject       = "object"
	TypeString       = "string"
	TypeNumber       = "number"
	TypeClass        = "class"
	TypeDate         = "date"
	TypeExistingFile = "existingfile"
	TypeFile         = "file"
	TypeFiles        = "files"
	TypeURL          = "url"
)

// FromPattern compiles a terse pattern string into a catalogue. Each
// character is a one-character option name unless it is a code applying to
// the name before it:
//
//	@ object  : string  % number  + class  # date
//	< existing file  > file  * files  / url
//
// A code gives the option arity one; '!' marks it required. A name without a
// code is a plain flag. Unrecognized punctuation is an ordinary name
// character.
//
//	FromPattern("vp:!f/") // -v flag, -p required string, -f url
func FromPattern(pattern string) (*Options, error) {
	options := NewOptions()

	var pendingName rune
	pendingType := ""
	pendingRequired := false

	flush := func() error {
		if pendingName == 0 {
			pendingType, pendingRequired = "", false
			return nil
		}
		option := New(string(pendingName), "", "")
		if pendingType != "" {
			option.WithArgs(1).WithType(pendingType)
		}
		option.WithRequired(pendingRequired)
		pendingName, pendingType, pendingRequired = 0, "", false
		return options.Add(option)
	}

	for _, r := range pattern {
		if t, isCode := typeForCode(r); isCode {
			pendingType = t
			continue
		}
		if r == '!' {
			pendingRequired = true
			continue
		}
		if err := flush(); err != nil {
			return nil, err
		}
		pendingName = r
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return options, nil
}

func typeForCode(r rune) (string, bool) {
	switch r {
	case '@':
		return TypeObject, true
	case ':':
		return TypeString, true
	case '%':
		return TypeNumber, true
	case '+':
		return TypeClass, true
	case '#':
		return TypeDate, true
	case '<':
		return TypeExistingFile, true
	case '>':
		return TypeFile, true
	case '*':
		return TypeFiles, true
	case '/':
		return TypeURL, true
	}
	return "", false
}
