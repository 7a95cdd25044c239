package models

// LastMessage is the denormalized most-recent message on a room summary.
type LastMessage struct {
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// RoomSummary is the derived chat-room view, one per distinct phone
// number in the message log. Never persisted.
type RoomSummary struct {
	RoomID      string      `json:"roomId"`
	PhoneNo     string      `json:"phoneNo"`
	RoomName    string      `json:"roomName"`
	UserInfo    UserProfile `json:"userInfo"`
	CaseCode    string      `json:"caseCode"`
	LastMessage LastMessage `json:"lastMessage"`
}

// NormalizedMessage is a presentation-ready message in a room's history.
// SenderID collapses authorship to "1" (our side) or "2" (counterparty)
// for the chat UI.
type NormalizedMessage struct {
	ID        string `json:"_id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	SenderID  string `json:"senderId"`
	Sender    string `json:"sender"`
	Receiver  string `json:"receiver"`
	IsSelf    bool   `json:"isSelf"`
}
