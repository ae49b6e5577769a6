package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`           // Frame number
	MX int  `json:"mx"`          // MouseX
	MY int  `json:"my"`          // MouseY
	P  bool `json:"p,omitempty"` // SelectPressed
}

// ReplayData contains all data needed to replay a battle
type ReplayData struct {
	Version   string       `json:"version"`
	Scenario  string       `json:"scenario"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
