package server

import (
	"fmt"

	"github.com/minaorangina/klondike/game"
	"github.com/minaorangina/klondike/protocol"
)

// applyCommand routes one inbound command to the engine and wraps the
// outcome. The switch is exhaustive over the commands a client may
// send; reply always carries the post-command snapshot.
func applyCommand(k *game.Klondike, msg protocol.InboundMessage) protocol.OutboundMessage {
	var err error

	switch msg.Command {
	case protocol.Draw:
		err = k.DrawCard()
	case protocol.MoveColumn:
		err = k.MoveWithinTableau(msg.SrcColumn, msg.CardIndex, msg.DstColumn)
	case protocol.MoveToFoundation:
		err = k.MoveToFoundation(msg.SrcColumn)
	case protocol.MoveReserveToColumn:
		err = k.MoveReserveToTableau(msg.DstColumn)
	case protocol.MoveReserveToFoundation:
		err = k.MoveReserveToFoundation()
	case protocol.DiscardReserve:
		err = k.DiscardReserve()
	case protocol.Reshuffle:
		err = k.Reshuffle()
	case protocol.ShowGame:
		// snapshot only
	default:
		err = fmt.Errorf("unrecognised command %d", msg.Command)
	}

	reply := protocol.OutboundMessage{
		GameID:   msg.GameID,
		Command:  msg.Command,
		Snapshot: k.Snapshot(),
	}
	if err != nil {
		reply.Command = protocol.Error
		reply.Error = err.Error()
	} else if reply.Snapshot.Won {
		reply.Command = protocol.Won
	}

	return reply
}
