package model

// Feedback is a user's post-event rating with an optional free-text
// comment. Ratings are restricted to the range [1,5] at construction
// time; there is no way to build an out-of-range feedback.
type Feedback struct {
	ID      uint64
	UserID  uint64
	EventID uint64
	Rating  int
	Comment string
}

// NewFeedback validates the rating and constructs the feedback record.
// It returns ErrInvalidRating when the rating is outside [1,5]. The
// comment may be empty.
func NewFeedback(userID, eventID uint64, rating int, comment string) (*Feedback, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	return &Feedback{UserID: userID, EventID: eventID, Rating: rating, Comment: comment}, nil
}
