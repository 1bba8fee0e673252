package harden

//go:generate go run github.com/abice/go-enum -f=$GOFILE --marshal --names

// Result represents the outcome of a hardening operation ENUM(
// applied // the operation changed remote state
// skipped // the precondition was already satisfied
// failed // the operation could not be completed
// )
type Result int
