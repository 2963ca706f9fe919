package notes

// Note is a user-owned text note. OwnerID never changes after creation.
// SharedWith holds the ids of users the owner has shared the note with;
// membership grants nothing in the current scope beyond being recorded.
type Note struct {
	ID         string
	Title      string
	Body       string
	OwnerID    string
	SharedWith []string
}
