package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJointFrame(t *testing.T) {
	packet, err := ParsePayload("JF0.25,0.5&0,0.8~")
	require.NoError(t, err)

	assert.Equal(t, JointFrameHeader, packet.Header)
	assert.Equal(t, []HandReading{
		{LeftHandY: 0.25, RightHandY: 0.5},
		{LeftHandY: 0, RightHandY: 0.8},
	}, packet.Skeletons)
}

func TestParseEmptyJointFrame(t *testing.T) {
	packet, err := ParsePayload("JF~")
	require.NoError(t, err)
	assert.Empty(t, packet.Skeletons)
}

func TestGenerateJointFramePayload(t *testing.T) {
	payload := GenerateJointFramePayload([]HandReading{
		{LeftHandY: 0.25, RightHandY: 0},
		{LeftHandY: 0.5, RightHandY: 0.125},
	})
	assert.Equal(t, "JF0.25,0&0.5,0.125~", payload)

	packet, err := ParsePayload(payload)
	require.NoError(t, err)
	assert.Len(t, packet.Skeletons, 2)
}

func TestParseControlPayloads(t *testing.T) {
	packet, err := ParsePayload(GenerateHeartBeatPayload())
	require.NoError(t, err)
	assert.Equal(t, HeartBeatHeader, packet.Header)

	packet, err = ParsePayload(GenerateQuitPayload())
	require.NoError(t, err)
	assert.Equal(t, QuitMatchHeader, packet.Header)
}

func TestParsePayloadErrors(t *testing.T) {
	cases := []struct {
		payload string
		want    error
	}{
		{payload: "", want: ErrMalformedPayload},
		{payload: "JF0.1,0.2", want: ErrMalformedPayload},
		{payload: "JF0.1~", want: ErrMalformedPayload},
		{payload: "JF0.1,abc~", want: ErrMalformedPayload},
		{payload: "JFxyz,0.2~", want: ErrMalformedPayload},
		{payload: "JF0.1,0.2,0.3~", want: ErrMalformedPayload},
		{payload: "XX0.1,0.2~", want: ErrUnknownHeader},
	}

	for _, c := range cases {
		_, err := ParsePayload(c.payload)
		assert.True(t, errors.Is(err, c.want), "payload %q: %v", c.payload, err)
	}
}

func TestPacketDeliver(t *testing.T) {
	packet, err := ParsePayload("JF0.4,0.6&0,0.9~")
	require.NoError(t, err)

	mb := NewMailbox()
	assert.Equal(t, 3, packet.Deliver(mb))

	left, ok := mb.Take(SideLeft)
	assert.True(t, ok)
	assert.Equal(t, 0.4, left)

	//後面的骨架覆蓋前面的
	right, ok := mb.Take(SideRight)
	assert.True(t, ok)
	assert.Equal(t, 0.9, right)
}
