package models

// FetchStatus is the lifecycle of one list fetch
type FetchStatus string

const (
	FetchIdle    FetchStatus = "idle"
	FetchLoading FetchStatus = "loading"
	FetchReady   FetchStatus = "ready"
	FetchFailed  FetchStatus = "failed"
)

// FetchState tracks a screen's list fetch so pages can render loading and error banners
type FetchState struct {
	Status FetchStatus `json:"status"`
	Error  string      `json:"error,omitempty"`
}

func (f *FetchState) Start() {
	f.Status = FetchLoading
	f.Error = ""
}

func (f *FetchState) Succeed() {
	f.Status = FetchReady
	f.Error = ""
}

func (f *FetchState) Fail(message string) {
	f.Status = FetchFailed
	f.Error = message
}

// Failed reports whether the last fetch failed
func (f FetchState) Failed() bool {
	return f.Status == FetchFailed
}
