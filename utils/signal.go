/*
 Copyright 2023 NanaFS Authors.

 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package utils

import (
	"fmt"
	"math"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
)

var (
	terminalCh = make(chan os.Signal, 1)
	userCh     = make(chan os.Signal, 1)
	notifyOnce sync.Once
)

// HandleTerminalSignal closes the returned channel on the first
// SIGINT/SIGTERM, a second one exits immediately.
func HandleTerminalSignal() chan struct{} {
	notifyOnce.Do(func() {
		signal.Notify(terminalCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
		signal.Notify(userCh, syscall.SIGUSR1)
		go dumpStackOnSignal()
	})

	ch := make(chan struct{})
	go func() {
		<-terminalCh
		close(ch)
		<-terminalCh
		os.Exit(2)
	}()
	return ch
}

func dumpStackOnSignal() {
	for range userCh {
		var (
			buf       []byte
			stackSize int
			startSize = math.MaxUint16
		)
		for len(buf) == stackSize {
			buf = make([]byte, startSize)
			stackSize = runtime.Stack(buf, true)
			startSize *= 2
		}
		fmt.Fprintln(os.Stderr, string(buf[:stackSize]))
	}
}

func Shutdown() {
	terminalCh <- syscall.SIGQUIT
}
