package stream

// ProtocolVersion is sent in the hello message so clients can detect
// incompatible servers.
const ProtocolVersion = 1

const (
	TypeHello         = "hello"
	TypePaint         = "paint"
	TypeClear         = "clear"
	TypeReset         = "reset"
	TypeCommandAck    = "commandAck"
	TypeCommandReject = "commandReject"
)

// Reasons carried by commandReject replies.
const (
	RejectUnknownType    = "unknown_type"
	RejectUnknownSpecies = "unknown_species"
	RejectBadRadius      = "bad_radius"
	RejectQueueFull      = "queue_full"
)

type helloMessage struct {
	Ver     int      `json:"ver"`
	Type    string   `json:"type"`
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Stride  int      `json:"stride"`
	Tick    uint64   `json:"tick"`
	Scene   string   `json:"scene,omitempty"`
	Species []string `json:"species"`
}

type clientMessage struct {
	Type    string  `json:"type"`
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Species string  `json:"species"`
	Radius  int     `json:"radius"`
	Seed    int64   `json:"seed"`
	Seq     *uint64 `json:"seq,omitempty"`
}

type commandAckMessage struct {
	Type string `json:"type"`
	Seq  uint64 `json:"seq"`
	Tick uint64 `json:"tick,omitempty"`
}

type commandRejectMessage struct {
	Type   string `json:"type"`
	Seq    uint64 `json:"seq,omitempty"`
	Reason string `json:"reason"`
}
