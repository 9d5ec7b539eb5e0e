package http

import (
	"fmt"

	"github.com/mribalta/babelchat-server/internal/core"
	"github.com/mribalta/babelchat-server/internal/proto"
)

// inboundToCommand validates a decoded envelope and maps it to a hub command.
// Unknown types map to (nil, nil) and are silently ignored.
func inboundToCommand(inbound proto.Inbound) (*core.Command, error) {
	switch inbound.Type {
	case proto.InboundTypeLogin:
		if inbound.Name == "" {
			return nil, fmt.Errorf("login: name is required")
		}
		return &core.Command{Kind: core.CommandLogin, Name: inbound.Name}, nil
	case proto.InboundTypeJoinRoom:
		if inbound.Room == "" {
			return nil, fmt.Errorf("joinRoom: room is required")
		}
		return &core.Command{Kind: core.CommandJoinRoom, Room: inbound.Room}, nil
	case proto.InboundTypeCreateRoom:
		if inbound.Room == "" {
			return nil, fmt.Errorf("createRoom: room is required")
		}
		return &core.Command{Kind: core.CommandCreateRoom, Room: inbound.Room}, nil
	case proto.InboundTypeMessage:
		if inbound.Room == "" || inbound.Message == "" {
			return nil, fmt.Errorf("message: room and message are required")
		}
		return &core.Command{Kind: core.CommandSendMessage, Room: inbound.Room, Text: inbound.Message}, nil
	case proto.InboundTypeDeleteMessage:
		if inbound.Room == "" || inbound.Message == "" {
			return nil, fmt.Errorf("deleteMessage: room and message are required")
		}
		return &core.Command{Kind: core.CommandDeleteMessage, Room: inbound.Room, Text: inbound.Message}, nil
	case proto.InboundTypeAppointAdmin:
		if inbound.Room == "" || inbound.NewAdmin == "" {
			return nil, fmt.Errorf("appointAdmin: room and newAdmin are required")
		}
		return &core.Command{Kind: core.CommandAppointAdmin, Room: inbound.Room, Admin: inbound.NewAdmin}, nil
	case proto.InboundTypeLeaveRoom:
		if inbound.Room == "" {
			return nil, fmt.Errorf("leaveRoom: room is required")
		}
		return &core.Command{Kind: core.CommandLeaveRoom, Room: inbound.Room}, nil
	default:
		return nil, nil
	}
}

func outboundFromEvent(event *core.Event) any {
	switch event.Kind {
	case core.EventLoginResult:
		return proto.Result{Type: proto.OutboundTypeLogin, Success: event.Success}
	case core.EventCreateRoomResult:
		return proto.Result{Type: proto.OutboundTypeCreateRoom, Success: event.Success}
	case core.EventRoomMessage:
		return proto.ChatMessage{
			Type:    proto.OutboundTypeMessage,
			Message: event.Message.Text,
			From:    event.Message.From,
		}
	case core.EventMessageDeleted:
		return proto.Deletion{Type: proto.OutboundTypeDeleteMessage, Message: event.Message.Text}
	case core.EventHistory:
		history := make([]proto.ChatMessage, 0, len(event.Messages))
		for _, msg := range event.Messages {
			history = append(history, proto.ChatMessage{
				Type:    proto.OutboundTypeMessage,
				Message: msg.Text,
				From:    msg.From,
			})
		}
		return proto.History{Type: proto.OutboundTypeMessageHistory, History: history}
	default:
		return nil
	}
}
