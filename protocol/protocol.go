package protocol

import (
	"github.com/minaorangina/klondike/game"
)

// Cmd represents a player command. The set is closed: every command a
// client can send has exactly one variant here.
type Cmd int

const (
	Null Cmd = iota
	Draw
	MoveColumn
	MoveToFoundation
	MoveReserveToColumn
	MoveReserveToFoundation
	DiscardReserve
	Reshuffle
	ShowGame
	Quit
	Error
	Won
)

var CmdNames = map[Cmd]string{
	Null:                    "Null",
	Draw:                    "Draw",
	MoveColumn:              "MoveColumn",
	MoveToFoundation:        "MoveToFoundation",
	MoveReserveToColumn:     "MoveReserveToColumn",
	MoveReserveToFoundation: "MoveReserveToFoundation",
	DiscardReserve:          "DiscardReserve",
	Reshuffle:               "Reshuffle",
	ShowGame:                "ShowGame",
	Quit:                    "Quit",
	Error:                   "Error",
	Won:                     "Won",
}

var NameToCmd = map[string]Cmd{
	"Null":                    Null,
	"Draw":                    Draw,
	"MoveColumn":              MoveColumn,
	"MoveToFoundation":        MoveToFoundation,
	"MoveReserveToColumn":     MoveReserveToColumn,
	"MoveReserveToFoundation": MoveReserveToFoundation,
	"DiscardReserve":          DiscardReserve,
	"Reshuffle":               Reshuffle,
	"ShowGame":                ShowGame,
	"Quit":                    Quit,
	"Error":                   Error,
	"Won":                     Won,
}

func (c Cmd) String() string {
	return CmdNames[c]
}

// InboundMessage is a message from a client to the engine. Column and
// index fields are only read by the commands that need them.
type InboundMessage struct {
	GameID    string `json:"gameID"`
	Command   Cmd    `json:"command"`
	SrcColumn int    `json:"srcColumn"`
	CardIndex int    `json:"cardIndex"`
	DstColumn int    `json:"dstColumn"`
}

// OutboundMessage is the engine's reply: the snapshot after the
// command, plus the error message when the command was rejected
type OutboundMessage struct {
	GameID   string        `json:"gameID"`
	Command  Cmd           `json:"command"`
	Snapshot game.Snapshot `json:"snapshot"`
	Error    string        `json:"error,omitempty"`
}
