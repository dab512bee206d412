package tailor

import "errors"

var (
	// ErrNoResume means no uploaded resume file exists to tailor against.
	ErrNoResume = errors.New("no uploaded resume file found")
	// ErrNoMessages means a chat request carried no messages.
	ErrNoMessages = errors.New("no messages provided")
	// ErrSaveFailed means the generated documents could not be persisted.
	ErrSaveFailed = errors.New("failed to save generated documents")
)
