package handler

// postRequest is the body for both create and update. Field names follow the
// wire contract of the store models. Deliberately unvalidated: the API accepts
// the payload as-is, including an arbitrary authorId.
type postRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID int64  `json:"authorId"`
	IsHidden bool   `json:"isHidden"`
}
