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

package metrics

import (
	"os"
	"time"

	"github.com/getsentry/sentry-go"
)

const SentryDSNEnv = "SENTRY_DSN"

// InitSentry enables error reporting when a dsn is configured, the env
// variable overrides the config file.
func InitSentry(dsn, release string) (bool, error) {
	if envDSN, ok := os.LookupEnv(SentryDSNEnv); ok {
		dsn = envDSN
	}
	if dsn == "" {
		return false, nil
	}
	err := sentry.Init(sentry.ClientOptions{Dsn: dsn, Release: release, TracesSampleRate: 0.6})
	if err != nil {
		return false, err
	}
	return true, nil
}

func FlushSentry() {
	sentry.Flush(2 * time.Second)
}
