package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	adaptermocks "github.com/mouse-blink/jstruct/internal/adapter/mocks"
	jerrors "github.com/mouse-blink/jstruct/internal/errors"
	m "github.com/mouse-blink/jstruct/internal/model"
)

func TestConfirmer_AwaitCount_AlreadyChanged(t *testing.T) {
	source := adaptermocks.NewMockSourceModel(t)
	source.EXPECT().MemberCount(m.KindMethod).Return(1).Once()

	c := NewConfirmer(source, time.Millisecond, time.Second, nil)
	require.NoError(t, c.AwaitCount(context.Background(), m.KindMethod, 0))
}

func TestConfirmer_AwaitCount_EventuallyChanges(t *testing.T) {
	source := adaptermocks.NewMockSourceModel(t)
	source.EXPECT().MemberCount(m.KindVariable).Return(2).Times(3)
	source.EXPECT().MemberCount(m.KindVariable).Return(1)

	c := NewConfirmer(source, time.Millisecond, time.Second, nil)
	require.NoError(t, c.AwaitCount(context.Background(), m.KindVariable, 2))
}

func TestConfirmer_AwaitCount_Timeout(t *testing.T) {
	source := adaptermocks.NewMockSourceModel(t)
	source.EXPECT().MemberCount(m.KindMethod).Return(0)

	c := NewConfirmer(source, 2*time.Millisecond, 20*time.Millisecond, nil)

	started := time.Now()
	err := c.AwaitCount(context.Background(), m.KindMethod, 0)
	require.Error(t, err)
	require.True(t, jerrors.IsCode(err, jerrors.CodeSyncTimeout))
	require.Less(t, time.Since(started), time.Second)
}

func TestConfirmer_AwaitCount_Cancelled(t *testing.T) {
	source := adaptermocks.NewMockSourceModel(t)
	source.EXPECT().MemberCount(m.KindEnum).Return(3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewConfirmer(source, 10*time.Millisecond, time.Minute, nil)
	err := c.AwaitCount(ctx, m.KindEnum, 3)
	require.True(t, jerrors.IsCode(err, jerrors.CodeSyncTimeout))
	require.True(t, errors.Is(err, context.Canceled))
}

func TestConfirmer_AwaitRevision(t *testing.T) {
	source := adaptermocks.NewMockSourceModel(t)
	source.EXPECT().ParsedRevision().Return(uint64(4)).Times(2)
	source.EXPECT().ParsedRevision().Return(uint64(5))

	c := NewConfirmer(source, time.Millisecond, time.Second, nil)
	require.NoError(t, c.AwaitRevision(context.Background(), 5))
}

func TestConfirmer_Defaults(t *testing.T) {
	c := NewConfirmer(adaptermocks.NewMockSourceModel(t), 0, -1, nil).(*confirmer)
	require.Equal(t, DefaultPollInterval, c.interval)
	require.Equal(t, DefaultSyncTimeout, c.timeout)
	require.NotNil(t, c.log)
}
