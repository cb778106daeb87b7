package dto

// ActivityKind is the decoded 'type' tag of an incoming activity. Decoding
// happens once at the boundary; everything downstream switches on the kind.
type ActivityKind int

const (
	KindUnknown ActivityKind = iota
	KindCreate
	KindAnnounce
	KindFollow
	KindLike
	KindAdd
	KindRemove
	KindBlock
	KindIgnore
	KindUndo
	KindUpdate
	KindAccept
	KindDelete
)

var kindNames = map[string]ActivityKind{
	"Create":   KindCreate,
	"Announce": KindAnnounce,
	"Follow":   KindFollow,
	"Like":     KindLike,
	"Add":      KindAdd,
	"Remove":   KindRemove,
	"Block":    KindBlock,
	"Ignore":   KindIgnore,
	"Undo":     KindUndo,
	"Update":   KindUpdate,
	"Accept":   KindAccept,
	"Delete":   KindDelete,
}

func ParseActivityKind(typeTag string) ActivityKind {
	if kind, ok := kindNames[typeTag]; ok {
		return kind
	}
	return KindUnknown
}

func (k ActivityKind) String() string {
	for name, kind := range kindNames {
		if kind == k {
			return name
		}
	}
	return "Unknown"
}
