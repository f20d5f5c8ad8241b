package relay

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/darkkaiser/alert-relay/internal/dispatch"
	"github.com/darkkaiser/alert-relay/internal/message"
	"github.com/darkkaiser/alert-relay/internal/msgtemplate"
	apperrors "github.com/darkkaiser/alert-relay/internal/pkg/errors"
	"github.com/darkkaiser/alert-relay/internal/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRouteStore 메모리 기반 routing.Store 구현입니다.
type memoryRouteStore struct {
	mu      sync.Mutex
	table   *routing.Table
	loadErr error
}

func (s *memoryRouteStore) Load(ctx context.Context) (*routing.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.table, nil
}

func (s *memoryRouteStore) Save(ctx context.Context, table *routing.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.table = table
	return nil
}

func (s *memoryRouteStore) Update(ctx context.Context, fn func(*routing.Table) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.table)
}

func (s *memoryRouteStore) Check(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadErr
}

// memoryTemplateStore 메모리 기반 msgtemplate.Store 구현입니다.
type memoryTemplateStore struct {
	template string
	getErr   error
}

func (s *memoryTemplateStore) Get(ctx context.Context) (string, error) {
	return s.template, s.getErr
}

func (s *memoryTemplateStore) Set(ctx context.Context, template string) error {
	s.template = template
	return nil
}

// recordingDispatcher 실제로 발송하지 않고 호출 인자를 기록합니다.
type recordingDispatcher struct {
	calls int

	numbers   []string
	message   string
	providers []routing.Provider
}

func (d *recordingDispatcher) Dispatch(ctx context.Context, numbers []string, message string, providers []routing.Provider) []dispatch.Attempt {
	d.calls++
	d.numbers = numbers
	d.message = message
	d.providers = providers

	attempts := make([]dispatch.Attempt, 0, len(providers))
	for i, p := range providers {
		attempts = append(attempts, dispatch.Attempt{ProviderIndex: i, URL: p.URL(), Channel: dispatch.Classify(p.URL()), StatusCode: 200})
	}
	return attempts
}

func newTestTable(t *testing.T) *routing.Table {
	t.Helper()

	table := routing.NewTable()
	require.NoError(t, table.AddNumber(routing.TeamDevOps, routing.Destination{Number: "+1001"}))
	require.NoError(t, table.AddNumber(routing.TeamDevOps, routing.Destination{Number: "+1002"}))
	require.NoError(t, table.AddNumber(routing.TeamWeb, routing.Destination{Number: "+1001"}))
	table.AddProvider(routing.NewBareProvider("https://chat.example.com/hooks/abc"))
	table.AddProvider(routing.NewBareProvider("https://sms.example.com/send"))

	return table
}

const multiAlertPayload = `{"alerts":[
	{"status":"firing","labels":{"alertname":"HighCPU"},"annotations":{"summary":"CPU high"}},
	{"status":"resolved","annotations":{"summary":"Disk ok"}}
]}`

func TestPipeline_Handle(t *testing.T) {
	t.Parallel()

	d := &recordingDispatcher{}
	p := New(&memoryRouteStore{table: newTestTable(t)}, &memoryTemplateStore{}, d)

	res, err := p.Handle(context.Background(), "devops", []byte(multiAlertPayload))
	require.NoError(t, err)

	assert.Equal(t, []string{"+1001", "+1002"}, res.SentTo)
	assert.Equal(t, "firing CPU high\nresolved Disk ok", res.Message)
	assert.Len(t, res.Attempts, 2)

	assert.Equal(t, 1, d.calls)
	assert.Equal(t, []string{"+1001", "+1002"}, d.numbers)
	assert.Equal(t, res.Message, d.message)
	assert.Len(t, d.providers, 2)
}

func TestPipeline_Handle_CustomTemplate(t *testing.T) {
	t.Parallel()

	d := &recordingDispatcher{}
	p := New(&memoryRouteStore{table: newTestTable(t)}, &memoryTemplateStore{template: "[{alertname}] {status}: {summary}"}, d)

	res, err := p.Handle(context.Background(), "all", []byte(`{"title":"t","state":"alerting","message":"Latency up","ruleName":"Latency"}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"+1001", "+1002"}, res.SentTo)
	assert.Equal(t, "[Latency] alerting: Latency up", res.Message)
}

func TestPipeline_Handle_UnknownTeam(t *testing.T) {
	t.Parallel()

	d := &recordingDispatcher{}
	p := New(&memoryRouteStore{table: newTestTable(t)}, &memoryTemplateStore{}, d)

	res, err := p.Handle(context.Background(), "DevOps", []byte(multiAlertPayload))
	require.NoError(t, err)

	assert.NotNil(t, res.SentTo)
	assert.Empty(t, res.SentTo)
	// 수신 번호가 없어도 웹훅 공급자에게는 발송된다.
	assert.Equal(t, 1, d.calls)
	assert.Empty(t, d.numbers)
}

func TestPipeline_Handle_Errors(t *testing.T) {
	t.Parallel()

	t.Run("라우팅 테이블 로드 실패", func(t *testing.T) {
		d := &recordingDispatcher{}
		p := New(&memoryRouteStore{loadErr: errors.New("disk error")}, &memoryTemplateStore{}, d)

		res, err := p.Handle(context.Background(), "devops", []byte(multiAlertPayload))
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.System))
		assert.NotNil(t, res.SentTo)
		assert.Zero(t, d.calls)
	})

	t.Run("템플릿 로드 실패", func(t *testing.T) {
		d := &recordingDispatcher{}
		p := New(&memoryRouteStore{table: newTestTable(t)}, &memoryTemplateStore{getErr: errors.New("permission denied")}, d)

		_, err := p.Handle(context.Background(), "devops", []byte(multiAlertPayload))
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.System))
		assert.Zero(t, d.calls)
	})

	t.Run("잘못된 JSON", func(t *testing.T) {
		d := &recordingDispatcher{}
		p := New(&memoryRouteStore{table: newTestTable(t)}, &memoryTemplateStore{}, d)

		res, err := p.Handle(context.Background(), "devops", []byte(`{"alerts":`))
		require.ErrorIs(t, err, message.ErrInvalidPayload)
		assert.Equal(t, []string{"+1001", "+1002"}, res.SentTo)
		assert.Zero(t, d.calls)
	})

	t.Run("알 수 없는 placeholder", func(t *testing.T) {
		d := &recordingDispatcher{}
		p := New(&memoryRouteStore{table: newTestTable(t)}, &memoryTemplateStore{template: "{status} {severity}"}, d)

		_, err := p.Handle(context.Background(), "devops", []byte(multiAlertPayload))
		require.ErrorIs(t, err, message.ErrUnknownPlaceholder)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
		assert.Zero(t, d.calls)
	})
}

func TestPipeline_Handle_WithFileStores(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	routes := routing.NewFileStore(dir + "/numbers.txt")
	templates := msgtemplate.NewFileStore(dir + "/template.txt")

	require.NoError(t, routes.Update(context.Background(), func(table *routing.Table) error {
		table.AddProvider(routing.NewBareProvider("https://sms.example.com/send"))
		return table.AddNumber(routing.TeamNOC, routing.Destination{Number: "+2001", Description: "night shift"})
	}))
	require.NoError(t, templates.Set(context.Background(), "{alertname}!"))

	d := &recordingDispatcher{}
	res, err := New(routes, templates, d).Handle(context.Background(), "noc", []byte(`{"alerts":[{"labels":{"alertname":"Down"}}]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"+2001"}, res.SentTo)
	assert.Equal(t, "Down!", res.Message)
	assert.Equal(t, "https://sms.example.com/send", d.providers[0].URL())
}

func TestNew_PanicsOnNilDependencies(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { New(nil, &memoryTemplateStore{}, &recordingDispatcher{}) })
	assert.Panics(t, func() { New(&memoryRouteStore{}, nil, &recordingDispatcher{}) })
	assert.Panics(t, func() { New(&memoryRouteStore{}, &memoryTemplateStore{}, nil) })
}
