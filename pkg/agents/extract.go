// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package agents

import (
	"context"
	"strings"
)

func (c *agentsClient) AgentText(ctx context.Context, threadId string) (string, error) {
	// Preferred path: the newest agent-authored message.
	latest, err := c.ThreadById(threadId).
		Messages().
		Order(ListSortOrderDescending).
		Get(ctx)
	if err != nil {
		return "", err
	}

	for _, msg := range latest.Data {
		if msg.Role != MessageRoleAgent {
			continue
		}
		if text := lastTextValue(msg); text != "" {
			return text, nil
		}
		break
	}

	// Fallback: scan the full thread oldest to newest and concatenate every
	// agent-authored text block.
	all, err := c.ThreadById(threadId).
		Messages().
		Order(ListSortOrderAscending).
		Get(ctx)
	if err != nil {
		return "", err
	}

	var collected []string
	for _, msg := range all.Data {
		if msg.Role != MessageRoleAgent {
			continue
		}
		for _, item := range msg.Content {
			if item.Text != nil && item.Text.Value != "" {
				collected = append(collected, item.Text.Value)
			}
		}
	}

	return strings.Join(collected, "\n"), nil
}

// lastTextValue returns the final text block of a message, mirroring the
// "last message text by role" shortcut of the service SDKs.
func lastTextValue(msg *ThreadMessage) string {
	for i := len(msg.Content) - 1; i >= 0; i-- {
		item := msg.Content[i]
		if item.Text != nil {
			return strings.TrimSpace(item.Text.Value)
		}
	}

	return ""
}
