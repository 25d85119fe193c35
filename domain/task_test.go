package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskApplyDefaults_EmptyFields(t *testing.T) {
	t.Parallel()

	task := &Task{Title: "Buy milk"}
	task.ApplyDefaults()

	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, "", task.Description)
	assert.Equal(t, DefaultCategory, task.Category)
	assert.Equal(t, PriorityMedium, task.Priority)
	assert.Equal(t, StatusPending, task.Status)
	assert.Nil(t, task.DueDate)
}

func TestTaskApplyDefaults_KeepsProvidedValues(t *testing.T) {
	t.Parallel()

	task := &Task{
		Title:    "File taxes",
		Category: "Finance",
		Priority: PriorityHigh,
	}
	task.ApplyDefaults()

	assert.Equal(t, "Finance", task.Category)
	assert.Equal(t, PriorityHigh, task.Priority)
}

func TestTaskApplyDefaults_UnknownPriority(t *testing.T) {
	t.Parallel()

	task := &Task{Priority: Priority("Urgent")}
	task.ApplyDefaults()

	assert.Equal(t, PriorityMedium, task.Priority)
}

func TestSessionAuthenticated(t *testing.T) {
	t.Parallel()

	var nilSession *Session
	assert.False(t, nilSession.Authenticated())
	assert.False(t, (&Session{ID: "s1"}).Authenticated())
	assert.True(t, (&Session{ID: "s1", User: SessionUser{ID: "u1", Email: "a@b.c"}}).Authenticated())
}
