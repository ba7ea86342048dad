package cat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Invariant 11.
func TestParser_FAByteByByteYieldsOneSetFrequency(t *testing.T) {
	p := NewParser()
	cmds := p.PushBytes([]byte("FA00007074000;"))
	assert.Len(t, cmds, 1)
	assert.Equal(t, CmdSetFreqA, cmds[0].Kind)
	assert.Equal(t, int64(7_074_000), cmds[0].Freq)
	assert.False(t, cmds[0].IsTx)
}

func TestParser_CrLfBetweenBytesDoNotAffectResult(t *testing.T) {
	p1 := NewParser()
	c1 := p1.PushBytes([]byte("FA00007074000;"))

	p2 := NewParser()
	c2 := p2.PushBytes([]byte("FA\r\n000070\r74000\n;"))

	assert.Equal(t, c1, c2)
}

// Scenario S1.
func TestParser_CatFrequencyRoundTrip(t *testing.T) {
	p := NewParser()
	cmds := p.PushBytes([]byte("FA00014070000;MD2;IF;"))
	assert.Len(t, cmds, 3)
	assert.Equal(t, CmdSetFreqA, cmds[0].Kind)
	assert.Equal(t, int64(14_070_000), cmds[0].Freq)
	assert.Equal(t, CmdSetMode, cmds[1].Kind)
	assert.Equal(t, 1, cmds[1].Mode) // USB
	assert.Equal(t, CmdReadStatus, cmds[2].Kind)

	resp := FormatStatus(14_070_000, 0, false, false, 1, false)
	assert.Contains(t, resp, "IF00014070000")
	assert.Equal(t, byte(';'), resp[len(resp)-1])
}

func TestParser_UnknownPrefixIsNotFatal(t *testing.T) {
	p := NewParser()
	cmds := p.PushBytes([]byte("ZZhello;FA00007074000;"))
	assert.Len(t, cmds, 2)
	assert.Equal(t, CmdUnknown, cmds[0].Kind)
	assert.Equal(t, "ZZ", cmds[0].Prefix)
	assert.Equal(t, CmdSetFreqA, cmds[1].Kind)
}

func TestParser_OverflowSilentlyDropsBuffer(t *testing.T) {
	p := NewParser()
	overflow := make([]byte, maxLineBytes+5)
	for i := range overflow {
		overflow[i] = 'X'
	}
	cmds := p.PushBytes(overflow)
	assert.Empty(t, cmds)
	cmds = p.PushBytes([]byte("FA00007074000;"))
	assert.Len(t, cmds, 1)
	assert.Equal(t, CmdSetFreqA, cmds[0].Kind)
}

func TestParser_ReadVsSetVariants(t *testing.T) {
	p := NewParser()
	cmds := p.PushBytes([]byte("FA;"))
	assert.Equal(t, CmdReadFreqA, cmds[0].Kind)
	assert.False(t, cmds[0].HasValue)
}

func TestParser_IdentityAndPowerState(t *testing.T) {
	p := NewParser()
	cmds := p.PushBytes([]byte("ID;PS1;TX;RX;"))
	assert.Equal(t, CmdReadID, cmds[0].Kind)
	assert.Equal(t, FormatID(), "ID019;")
	assert.Equal(t, CmdSetPowerState, cmds[1].Kind)
	assert.True(t, cmds[1].On)
	assert.Equal(t, CmdTx, cmds[2].Kind)
	assert.Equal(t, CmdRx, cmds[3].Kind)
}

func TestParser_FrFtDistinguishVfoSelectDirection(t *testing.T) {
	p := NewParser()
	cmds := p.PushBytes([]byte("FR0;FT1;"))
	assert.False(t, cmds[0].IsTx)
	assert.True(t, cmds[1].IsTx)
	assert.Equal(t, 1, cmds[1].IntValue)
}

func TestFormatFrequency_ZeroPadded(t *testing.T) {
	assert.Equal(t, "FA00007074000;", FormatFrequency("FA", 7_074_000))
}
