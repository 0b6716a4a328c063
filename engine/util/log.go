package util

var GLOBAL_LOG_LEVEL = LogLevelError
var GLOBAL_LOG_CATEGORIES = LogIO | LogSystem | LogRender

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelDebug
	LogLevelInfo
)

type LogCategory int

const (
	LogRaycast LogCategory = 1 << iota
	LogHeightfield
	LogRender
	LogIO
	LogSystem
)

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	println(txt)
}

func LogRaycastDebug(txt string) {
	log(LogRaycast, LogLevelDebug, txt)
}

func LogHeightfieldInfo(txt string) {
	log(LogHeightfield, LogLevelInfo, txt)
}

func LogHeightfieldError(txt string) {
	log(LogHeightfield, LogLevelError, txt)
}

func LogRenderInfo(txt string) {
	log(LogRender, LogLevelInfo, txt)
}

func LogRenderDebug(txt string) {
	log(LogRender, LogLevelDebug, txt)
}

func LogIOInfo(txt string) {
	log(LogIO, LogLevelInfo, txt)
}

func LogIOError(txt string) {
	log(LogIO, LogLevelError, txt)
}

func LogSystemInfo(txt string) {
	log(LogSystem, LogLevelInfo, txt)
}
