package valueobjects

import "fmt"

type ResponseType string

const (
	ResponseTypeManual      ResponseType = "manual"
	ResponseTypeAIGenerated ResponseType = "ai_generated"
	ResponseTypeSystem      ResponseType = "system"
)

var validResponseTypes = map[ResponseType]bool{
	ResponseTypeManual:      true,
	ResponseTypeAIGenerated: true,
	ResponseTypeSystem:      true,
}

func (rt ResponseType) String() string {
	return string(rt)
}

func (rt ResponseType) IsValid() bool {
	return validResponseTypes[rt]
}

func NewResponseType(s string) (ResponseType, error) {
	rt := ResponseType(s)
	if !rt.IsValid() {
		return "", fmt.Errorf("invalid response type: %s", s)
	}
	return rt, nil
}
