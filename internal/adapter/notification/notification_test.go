package notification_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/cjaradhye/quirkventory/internal/adapter/notification"
	"github.com/cjaradhye/quirkventory/internal/core/port"
	"github.com/cjaradhye/quirkventory/internal/core/port/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func alert(message string, priority port.AlertPriority) port.Alert {
	return port.Alert{
		Message:   message,
		Priority:  priority,
		Source:    "inventory",
		CreatedAt: time.Now(),
	}
}

func TestFeed_RecordsAndForwards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	forward := mock.NewMockNotifier(ctrl)
	forward.EXPECT().Notify(gomock.Any()).Times(2)

	feed := notification.NewFeed(10, forward)
	feed.Notify(alert("first", port.AlertPriorityLow))
	feed.Notify(alert("second", port.AlertPriorityHigh))

	recent := feed.Recent(0)
	require.Len(t, recent, 2)
	assert.Equal(t, "first", recent[0].Message)
	assert.Equal(t, "second", recent[1].Message)
}

func TestFeed_TrimsToLimit(t *testing.T) {
	feed := notification.NewFeed(3, nil)
	for i := 0; i < 5; i++ {
		feed.Notify(alert(fmt.Sprintf("alert %d", i), port.AlertPriorityLow))
	}

	recent := feed.Recent(0)
	require.Len(t, recent, 3)
	assert.Equal(t, "alert 2", recent[0].Message)
	assert.Equal(t, "alert 4", recent[2].Message)
}

func TestFeed_Recent(t *testing.T) {
	feed := notification.NewFeed(10, nil)
	for i := 0; i < 4; i++ {
		feed.Notify(alert(fmt.Sprintf("alert %d", i), port.AlertPriorityLow))
	}

	last := feed.Recent(2)
	require.Len(t, last, 2)
	assert.Equal(t, "alert 2", last[0].Message)
	assert.Equal(t, "alert 3", last[1].Message)

	assert.Len(t, feed.Recent(100), 4)
}

func TestFeed_HighPriority(t *testing.T) {
	feed := notification.NewFeed(10, nil)
	feed.Notify(alert("routine", port.AlertPriorityLow))
	feed.Notify(alert("worrying", port.AlertPriorityHigh))
	feed.Notify(alert("on fire", port.AlertPriorityCritical))
	feed.Notify(alert("meh", port.AlertPriorityMedium))

	high := feed.HighPriority()
	require.Len(t, high, 2)
	assert.Equal(t, "worrying", high[0].Message)
	assert.Equal(t, "on fire", high[1].Message)
}

func TestAlert_HighPriority(t *testing.T) {
	assert.False(t, alert("", port.AlertPriorityLow).HighPriority())
	assert.False(t, alert("", port.AlertPriorityMedium).HighPriority())
	assert.True(t, alert("", port.AlertPriorityHigh).HighPriority())
	assert.True(t, alert("", port.AlertPriorityCritical).HighPriority())
}
