package middleware

import (
	"io"

	applog "github.com/darkkaiser/alert-relay/pkg/log"
	"github.com/labstack/gommon/log"
)

// componentEcho Echo 내부에서 발생한 로그에 붙는 컴포넌트 이름입니다.
const componentEcho = "api.echo"

// echoLevels Echo 로그 레벨과 애플리케이션 로그 레벨의 대응표입니다. 없는 레벨은 OFF로 취급합니다.
var echoLevels = map[log.Lvl]applog.Level{
	log.DEBUG: applog.DebugLevel,
	log.INFO:  applog.InfoLevel,
	log.WARN:  applog.WarnLevel,
	log.ERROR: applog.ErrorLevel,
}

// Logger Echo의 log.Logger 인터페이스를 애플리케이션 로거 위에 구현한 어댑터입니다.
//
// Echo가 남기는 로그는 component=api.echo 필드와 함께 애플리케이션 로그 파일로 기록됩니다.
// Prefix와 Header 기능은 사용하지 않습니다.
type Logger struct {
	*applog.Logger
}

// NewLogger 전역 애플리케이션 로거를 사용하는 Logger를 반환합니다.
func NewLogger() Logger {
	return Logger{Logger: applog.StandardLogger()}
}

func (l Logger) entry() *applog.Entry {
	return l.Logger.WithField("component", componentEcho)
}

func (l Logger) Output() io.Writer { return l.Logger.Out }
func (l Logger) SetOutput(w io.Writer) { l.Logger.SetOutput(w) }
func (l Logger) Prefix() string { return "" }
func (l Logger) SetPrefix(string) {}
func (l Logger) SetHeader(string) {}
func (l Logger) Print(i ...any) { l.entry().Print(i...) }
func (l Logger) Printf(f string, a ...any) { l.entry().Printf(f, a...) }
func (l Logger) Printj(j log.JSON) { l.entry().WithFields(applog.Fields(j)).Print() }
func (l Logger) Debug(i ...any) { l.entry().Debug(i...) }
func (l Logger) Debugf(f string, a ...any) { l.entry().Debugf(f, a...) }
func (l Logger) Debugj(j log.JSON) { l.entry().WithFields(applog.Fields(j)).Debug() }
func (l Logger) Info(i ...any) { l.entry().Info(i...) }
func (l Logger) Infof(f string, a ...any) { l.entry().Infof(f, a...) }
func (l Logger) Infoj(j log.JSON) { l.entry().WithFields(applog.Fields(j)).Info() }
func (l Logger) Warn(i ...any) { l.entry().Warn(i...) }
func (l Logger) Warnf(f string, a ...any) { l.entry().Warnf(f, a...) }
func (l Logger) Warnj(j log.JSON) { l.entry().WithFields(applog.Fields(j)).Warn() }
func (l Logger) Error(i ...any) { l.entry().Error(i...) }
func (l Logger) Errorf(f string, a ...any) { l.entry().Errorf(f, a...) }
func (l Logger) Errorj(j log.JSON) { l.entry().WithFields(applog.Fields(j)).Error() }
func (l Logger) Fatal(i ...any) { l.entry().Fatal(i...) }
func (l Logger) Fatalf(f string, a ...any) { l.entry().Fatalf(f, a...) }
func (l Logger) Fatalj(j log.JSON) { l.entry().WithFields(applog.Fields(j)).Fatal() }
func (l Logger) Panic(i ...any) { l.entry().Panic(i...) }
func (l Logger) Panicf(f string, a ...any) { l.entry().Panicf(f, a...) }
func (l Logger) Panicj(j log.JSON) { l.entry().WithFields(applog.Fields(j)).Panic() }

// Level 애플리케이션 로그 레벨을 Echo 로그 레벨로 변환합니다.
// Trace, Fatal, Panic처럼 Echo에 대응하는 레벨이 없으면 OFF를 반환합니다.
func (l Logger) Level() log.Lvl {
	for lvl, appLvl := range echoLevels {
		if appLvl == l.Logger.Level {
			return lvl
		}
	}
	return log.OFF
}

// SetLevel Echo 로그 레벨을 애플리케이션 로그 레벨로 변환하여 설정합니다. OFF는 무시합니다.
func (l Logger) SetLevel(lvl log.Lvl) {
	if appLvl, ok := echoLevels[lvl]; ok {
		l.Logger.SetLevel(appLvl)
	}
}
