package providers

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"bevlog/internal/structures"
)

type TypeEnum uint8

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
)

// Logger routes formatted messages to a per-type log file. TypeApp holds
// lifecycle and persistence events, TypeGet/TypePost the request streams.
type Logger interface {
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Errorf(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

func GetLogTypeByRequestType(method string) TypeEnum {
	if method == "POST" {
		return TypePost
	}
	return TypeGet
}

type ZerologProvider struct {
	loggers map[TypeEnum]zerolog.Logger
	files   []*os.File
}

var logFileNames = map[TypeEnum]string{
	TypeApp:  "app.log",
	TypeGet:  "get.log",
	TypePost: "post.log",
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, err
	}

	provider := &ZerologProvider{
		loggers: make(map[TypeEnum]zerolog.Logger, len(logFileNames)),
	}

	for logType, name := range logFileNames {
		path := filepath.Join(conf.Logger.Dir, name)
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, fs.FileMode(conf.Logger.Mode))
		if err != nil {
			provider.Close()
			return nil, err
		}
		provider.files = append(provider.files, file)
		provider.loggers[logType] = zerolog.New(file).Level(level).With().Timestamp().Logger()
	}

	return provider, nil
}

func (z *ZerologProvider) logger(t TypeEnum) zerolog.Logger {
	if l, ok := z.loggers[t]; ok {
		return l
	}
	return z.loggers[TypeApp]
}

func (z *ZerologProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	l := z.logger(t)
	l.Debug().Msgf(format, args...)
}

func (z *ZerologProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	l := z.logger(t)
	l.Info().Msgf(format, args...)
}

func (z *ZerologProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	l := z.logger(t)
	l.Warn().Msgf(format, args...)
}

func (z *ZerologProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	l := z.logger(t)
	l.Error().Msgf(format, args...)
}

func (z *ZerologProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	l := z.logger(t)
	l.Fatal().Msgf(format, args...)
}

func (z *ZerologProvider) Close() {
	for _, f := range z.files {
		_ = f.Close()
	}
}
