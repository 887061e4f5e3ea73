package config

const (
	defaultLibraryDir = "~/tv"
	defaultLogDir     = "~/.local/share/tooba/logs"
	defaultBind       = "127.0.0.1:7788"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

func defaultVideoExtensions() []string {
	return []string{".mp4", ".webm", ".mkv", ".avi"}
}

func defaultThumbExtensions() []string {
	return []string{".tbn"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LibraryDir: defaultLibraryDir,
			LogDir:     defaultLogDir,
			Bind:       defaultBind,
		},
		Library: Library{
			VideoExtensions: defaultVideoExtensions(),
			ThumbExtensions: defaultThumbExtensions(),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
