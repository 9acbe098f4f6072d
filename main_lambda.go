//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type tuneResponse struct {
	Battle          string         `json:"battle,omitempty"`
	Factor          float64        `json:"factor"`
	AnchorSlot      int            `json:"anchorSlot"`
	AnchorSpeed     int            `json:"anchorSpeed"`
	RawSpeeds       [PartySize]int `json:"rawSpeeds"`
	EffectiveSpeeds [PartySize]int `json:"effectiveSpeeds"`
}

func handler(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	req, err := ParsePartyRequest(body)
	if err != nil {
		return errResp(400, err.Error())
	}

	f := req.Factor
	battle := ""
	if f == 0 {
		battle = req.Battle
		var ok bool
		f, ok = BattleFactor(battle)
		if !ok {
			return errResp(400, fmt.Sprintf("unknown battle type %q", battle))
		}
	}

	res, err := ResolveWithBuffs(req.Anchor, req.Speed, f, req.Buffs)
	if err != nil {
		return errResp(400, err.Error())
	}

	resp := tuneResponse{
		Battle:          battle,
		Factor:          f,
		AnchorSlot:      req.Anchor,
		AnchorSpeed:     req.Speed,
		RawSpeeds:       res.RawSpeeds,
		EffectiveSpeeds: res.EffectiveSpeeds,
	}
	respJSON, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
