package pwrcli

import (
	"context"
	"encoding/json"
	"net/http"

	cws "github.com/coder/websocket"

	"github.com/pwrsched/pwrsched/common"
)

// Subscribe opens the daemon's event feed and delivers data-changed
// notifications until ctx is cancelled or the connection drops. The
// returned channel is closed on either.
func (c *Client) Subscribe(ctx context.Context) (<-chan common.ChangeNotification, error) {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+c.token)

	conn, _, err := cws.Dial(ctx, "ws://"+virtualHost+common.EventsPath, &cws.DialOptions{
		HTTPClient: c.httpc,
		HTTPHeader: header,
	})
	if err != nil {
		return nil, err
	}

	out := make(chan common.ChangeNotification, 8)
	go func() {
		defer close(out)
		defer conn.Close(cws.StatusNormalClosure, "")
		for {
			_, data, err := conn.Read(ctx)
			if err != nil {
				return
			}
			var n common.ChangeNotification
			if err := json.Unmarshal(data, &n); err != nil {
				debugLog("events: bad notification: %v", err)
				continue
			}
			select {
			case out <- n:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
