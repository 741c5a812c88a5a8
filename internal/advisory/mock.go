package advisory

import (
	"context"
	"fmt"
	"strings"
)

// MockGenerator 本地开发用的确定性输出
type MockGenerator struct{}

func (MockGenerator) Theme(context.Context) (string, error) {
	return `{"title":"Soft Weather","prompt":"What has been quietly asking for your attention?",` +
		`"invitation":"Make one small mark, line, or sound for it."}`, nil
}

func (MockGenerator) Prompt(_ context.Context, emotion string) (string, error) {
	if emotion == "" {
		return FallbackPrompt, nil
	}
	return fmt.Sprintf("Let the %s in you choose a single color and follow it.", strings.ToLower(emotion)), nil
}
