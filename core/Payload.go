package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

const PayloadTerminator = "~"

const JointFrameHeader = "JF" // Joint Frame 骨架手部資料
const HeartBeatHeader = "HB"  // Heart Beat 心跳封包
const QuitMatchHeader = "QT"  // Quit 結束比賽

const skeletonSeparator = "&"
const fieldSeparator = ","

var ErrMalformedPayload = errors.New("malformed payload")
var ErrUnknownHeader = errors.New("unknown payload header")

// HandReading 一個骨架的左右手高度，0 代表沒追蹤到
type HandReading struct {
	LeftHandY  float64
	RightHandY float64
}

// Packet 解析後的封包
type Packet struct {
	Header    string
	Skeletons []HandReading
}

func GenerateHeartBeatPayload() string {
	return HeartBeatHeader + PayloadTerminator
}

func GenerateQuitPayload() string {
	return QuitMatchHeader + PayloadTerminator
}

//leftHandY,rightHandY&leftHandY,rightHandY
func GenerateJointFramePayload(skeletons []HandReading) string {
	var payload string
	for i, s := range skeletons {
		payload += fmt.Sprintf("%s,%s", cast.ToString(s.LeftHandY), cast.ToString(s.RightHandY))

		if i != len(skeletons)-1 {
			payload += skeletonSeparator
		}
	}
	return JointFrameHeader + payload + PayloadTerminator
}

func ParsePayload(payload string) (Packet, error) {
	if len(payload) < 3 || !strings.HasSuffix(payload, PayloadTerminator) {
		return Packet{}, fmt.Errorf("%w: %q", ErrMalformedPayload, payload)
	}

	header := payload[0:2]
	body := removeHeaderTerminator(payload)

	switch header {
	case HeartBeatHeader, QuitMatchHeader:
		return Packet{Header: header}, nil

	case JointFrameHeader:
		skeletons, err := parseJointFrame(body)
		if err != nil {
			return Packet{}, err
		}
		return Packet{Header: header, Skeletons: skeletons}, nil
	}

	return Packet{}, fmt.Errorf("%w: %q", ErrUnknownHeader, header)
}

func parseJointFrame(body string) ([]HandReading, error) {
	if body == "" {
		return nil, nil
	}

	split := strings.Split(body, skeletonSeparator)
	skeletons := make([]HandReading, 0, len(split))
	for _, s := range split {
		hands := strings.Split(s, fieldSeparator)
		if len(hands) != 2 {
			return nil, fmt.Errorf("%w: skeleton %q", ErrMalformedPayload, s)
		}

		left, err := cast.ToFloat64E(strings.TrimSpace(hands[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: left hand %q", ErrMalformedPayload, hands[0])
		}
		right, err := cast.ToFloat64E(strings.TrimSpace(hands[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: right hand %q", ErrMalformedPayload, hands[1])
		}

		skeletons = append(skeletons, HandReading{LeftHandY: left, RightHandY: right})
	}
	return skeletons, nil
}

// Deliver 把一幀骨架資料放進 mailbox，後面的骨架覆蓋前面的，回傳寫入幾筆
func (p Packet) Deliver(mb *Mailbox) int {
	delivered := 0
	for _, s := range p.Skeletons {
		if mb.Put(SideLeft, s.LeftHandY) {
			delivered++
		}
		if mb.Put(SideRight, s.RightHandY) {
			delivered++
		}
	}
	return delivered
}

func removeHeaderTerminator(payload string) string {
	return payload[2 : len(payload)-1]
}
