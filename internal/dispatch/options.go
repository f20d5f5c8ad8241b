package dispatch

import "time"

const (
	// DefaultSendTimeout 발송 요청 한 건의 기본 타임아웃입니다.
	DefaultSendTimeout = 10 * time.Second

	// DefaultProviderInterval 공급자 간 기본 대기 시간입니다.
	DefaultProviderInterval = 1 * time.Second
)

// Option Dispatcher 설정을 변경합니다.
type Option func(*Dispatcher)

// WithSender 요청 전송에 사용할 Sender를 지정합니다.
func WithSender(s Sender) Option {
	return func(d *Dispatcher) {
		if s != nil {
			d.sender = s
		}
	}
}

// WithSendTimeout 발송 요청 한 건의 타임아웃을 지정합니다. 0 이하의 값은 무시됩니다.
func WithSendTimeout(timeout time.Duration) Option {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.sendTimeout = timeout
		}
	}
}

// WithProviderInterval 공급자 사이의 대기 시간을 지정합니다. 0이면 대기하지 않습니다.
func WithProviderInterval(interval time.Duration) Option {
	return func(d *Dispatcher) {
		if interval >= 0 {
			d.providerInterval = interval
		}
	}
}
