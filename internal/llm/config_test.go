package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, "http://localhost:11434", cfg.Endpoint)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, 15000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)

	assert.Equal(t, 0.3, cfg.Tasks[TaskTimeline].Temperature)
	assert.Equal(t, 4096, cfg.Tasks[TaskTimeline].MaxTokens)
	assert.Equal(t, 0.5, cfg.Tasks[TaskInsight].Temperature)
	assert.Equal(t, 256, cfg.Tasks[TaskInsight].MaxTokens)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("THESISFLOW_LLM_ENABLED", "true")
	t.Setenv("THESISFLOW_LLM_ENDPOINT", "http://ollama.internal:11434")
	t.Setenv("THESISFLOW_LLM_MODEL", "mistral")
	t.Setenv("THESISFLOW_LLM_TIMEOUT_MS", "5000")
	t.Setenv("THESISFLOW_LLM_MAX_RETRIES", "3")
	t.Setenv("THESISFLOW_LLM_INSIGHT_TIMEOUT_MS", "2000")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "http://ollama.internal:11434", cfg.Endpoint)
	assert.Equal(t, "mistral", cfg.Model)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 2000, cfg.Tasks[TaskInsight].TimeoutMs)
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("THESISFLOW_LLM_TIMEOUT_MS", "not-a-number")
	t.Setenv("THESISFLOW_LLM_MAX_RETRIES", "-2")
	t.Setenv("THESISFLOW_LLM_REPLAN_TIMEOUT_MS", "0")

	cfg := LoadConfig()

	assert.Equal(t, 15000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
	assert.Equal(t, 30000, cfg.Tasks[TaskReplan].TimeoutMs)
}

func TestTaskTimeout(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 30000, cfg.TaskTimeout(TaskTimeline))
	assert.Equal(t, 8000, cfg.TaskTimeout(TaskInsight))

	// Unknown task falls back to the global timeout.
	assert.Equal(t, 15000, cfg.TaskTimeout(TaskType("other")))

	// Zero task timeout falls back too.
	cfg.Tasks[TaskReplan] = TaskConfig{Temperature: 0.3, MaxTokens: 4096}
	assert.Equal(t, 15000, cfg.TaskTimeout(TaskReplan))
}
