package preload

//go:generate go run github.com/abice/go-enum -f=$GOFILE --marshal --names

// Status classifies the outcome of a preload list submission ENUM(
// success // the registry accepted the domain
// remoteErrors // the registry rejected the domain with policy errors
// transportFailure // the submission never produced a well-formed response
// )
type Status int

// Notice is a structured remark returned by the registry.
type Notice struct {
	Summary string `json:"summary"`
	Message string `json:"message"`
}

// Result is the classified outcome of one submission. Warnings can
// accompany a success without changing its classification: they are
// informational for the operator, not a rejection.
type Result struct {
	Status   Status
	Errors   []Notice
	Warnings []Notice
	Detail   string
}
