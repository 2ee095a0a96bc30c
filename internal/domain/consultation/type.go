package consultation

// Type is the consultation delivery channel.
type Type string

const (
	TypeTextChat  Type = "text_chat"
	TypeVoiceCall Type = "voice_call"
	TypeVideoCall Type = "video_call"
	TypeInPerson  Type = "in_person"
)

func ParseType(s string) (Type, bool) {
	switch Type(s) {
	case TypeTextChat, TypeVoiceCall, TypeVideoCall, TypeInPerson:
		return Type(s), true
	}
	return "", false
}

// FeeFor returns the platform fee for a consultation type, in rials.
func FeeFor(t Type) int64 {
	switch t {
	case TypeVoiceCall:
		return 80000
	case TypeVideoCall:
		return 120000
	case TypeInPerson:
		return 200000
	default:
		return 50000
	}
}
