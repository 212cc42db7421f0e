//
// Corvid - a concurrent UCI chess engine
//
// MIT License
//
// Copyright (c) 2020-2026 Corvid Chess Contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package config

// logConfiguration is a data structure to hold the configuration of
// logging destinations and levels, settable from the config file or
// overwritten by command line options.
type logConfiguration struct {
	LogPath       string
	LogLvl        int
	SearchLogLvl  int
	UseUciLogfile bool
}

// LogLevels maps the textual log level names accepted on the command
// line and in the config file to the numeric levels understood by
// github.com/op/go-logging (critical=0 .. debug=5).
var LogLevels = map[string]int{
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Log.LogPath = "./logs"
	Settings.Log.LogLvl = LogLevel
	Settings.Log.SearchLogLvl = SearchLogLevel
	Settings.Log.UseUciLogfile = false
}

// setupLogLvl reconciles the package-level LogLevel/SearchLogLevel
// globals (set directly by callers or by command line flags before
// Setup() runs) with whatever the config file specified.
func setupLogLvl() {
	if Settings.Log.LogLvl != 0 {
		LogLevel = Settings.Log.LogLvl
	}
	if Settings.Log.SearchLogLvl != 0 {
		SearchLogLevel = Settings.Log.SearchLogLvl
	}
	Settings.Log.LogLvl = LogLevel
	Settings.Log.SearchLogLvl = SearchLogLevel
}
