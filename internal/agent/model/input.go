package model

// InputType selects the pipeline branch for one input.
type InputType string

const (
	InputWord    InputType = "word"
	InputText    InputType = "text"
	InputCommand InputType = "command"
)

func (t InputType) String() string {
	return string(t)
}
