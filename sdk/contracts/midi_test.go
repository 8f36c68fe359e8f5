package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteMessageFraming(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Message{144, 74, 57}, NoteMessage(74, 57))
	assert.Equal([]byte{144, 74, 0}, NoteMessage(74, 0).Bytes())
	assert.True(NoteMessage(60, 1).IsNoteOn())
	assert.True(NoteMessage(60, 0).IsNoteOff())
	assert.False(NoteMessage(60, 0).IsNoteOn())
}

func TestNoteMessageClampsToSevenBits(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Message{144, 127, 0}, NoteMessage(200, -3))
	assert.Equal(Message{144, 0, 127}, NoteMessage(-1, 300))
}

func TestPedalMessage(t *testing.T) {
	assert := assert.New(t)

	on := PedalMessage(127)
	assert.Equal(Message{176, 64, 127}, on)
	assert.True(on.IsPedal())
	assert.False(on.IsNoteOn())
	assert.Equal(Message{176, 64, 0}, PedalMessage(0))
}

func TestMessageBytesIsACopy(t *testing.T) {
	m := NoteMessage(60, 10)
	b := m.Bytes()
	b[1] = 0
	assert.Equal(t, byte(60), m.Data1())
}

func TestMessageString(t *testing.T) {
	assert.Equal(t, "NoteOn key=60 vel=10", NoteMessage(60, 10).String())
	assert.Equal(t, "NoteOff key=60", NoteMessage(60, 0).String())
	assert.Equal(t, "Pedal value=127", PedalMessage(127).String())
}
