/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package logging is a helper for the "github.com/op/go-logging" package
// to reduce the lines of code within each go file to one line.
// The functions return Logger instances which are configured with
// the necessary backends and formatters.
package logging

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/chessd/internal/config"
	"github.com/frankkopp/chessd/internal/util"
)

var out = message.NewPrinter(language.English)

var (
	standardLog  *logging.Logger
	testLog      *logging.Logger
	protocolLog  *logging.Logger
	protocolFile *os.File

	standardFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)

	protocolLogFilePath string
)

func init() {
	programName, _ := os.Executable()
	exePath := filepath.Dir(programName)
	exeName := strings.TrimSuffix(filepath.Base(programName), ".exe")
	protocolLogFilePath = exePath + "/../logs/" + exeName + "_protocol.log"

	// global loggers
	standardLog = logging.MustGetLogger("standard")
	testLog = logging.MustGetLogger("test")
	protocolLog = logging.MustGetLogger("protocol")
}

// GetLog returns an instance of a standard Logger preconfigured with a
// os.Stdout backend and a "normal" logging format (e.g. time - file - level)
func GetLog() *logging.Logger {
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, standardFormat)
	standardBackEnd := logging.AddModuleLevel(backend1Formatter)
	level := logging.Level(config.LogLevel)
	standardBackEnd.SetLevel(level, "")
	standardLog.SetBackend(standardBackEnd)
	return standardLog
}

// GetTestLog returns an instance of a standard Logger preconfigured with a
// os.Stdout backend and a "normal" logging format (e.g. time - file - level)
func GetTestLog() *logging.Logger {
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	format := logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
	backend1Formatter := logging.NewBackendFormatter(backend1, format)
	standardBackEnd := logging.AddModuleLevel(backend1Formatter)
	standardBackEnd.SetLevel(logging.Level(config.TestLogLevel), "")
	testLog.SetBackend(standardBackEnd)
	return testLog
}

// GetProtocolLog returns an instance of a special Logger preconfigured for
// logging every wire packet exchanged with a connected client, to
// os.Stdout and to a file. Format is a simple "time PROTO <message>".
func GetProtocolLog() *logging.Logger {
	// Stdout backend
	protoFormat := logging.MustStringFormatter(`%{time:15:04:05.000} PROTO %{message}`)
	backend1 := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	backend1Formatter := logging.NewBackendFormatter(backend1, protoFormat)
	protoBackEnd1 := logging.AddModuleLevel(backend1Formatter)
	protoBackEnd1.SetLevel(logging.DEBUG, "")

	// protocolLogFilePath's directory is never guaranteed to exist next to
	// the executable, so resolve (and create if needed) it before opening
	// the file backend. The path is absolute, so ResolveCreateFolder only
	// tries that one location; if it can't be created the file backend
	// fails to open and only the stdout backend is used.
	logDir, err := util.ResolveCreateFolder(filepath.Dir(protocolLogFilePath))
	if err == nil {
		protocolLogFilePath = filepath.Join(logDir, filepath.Base(protocolLogFilePath))
	}

	// File backend
	protocolFile, err = os.OpenFile(protocolLogFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Println("Logfile could not be created", err)
		protocolLog.SetBackend(protoBackEnd1)
	} else {
		backend2 := logging.NewLogBackend(protocolFile, "", log.Lmsgprefix)
		backend2Formatter := logging.NewBackendFormatter(backend2, protoFormat)
		protoBackEnd2 := logging.AddModuleLevel(backend2Formatter)
		protoBackEnd2.SetLevel(logging.DEBUG, "")
		multi := logging.SetBackend(protoBackEnd1, protoBackEnd2)
		protocolLog.SetBackend(multi)
	}

	return protocolLog
}
