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

package apitool

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	metrics "github.com/slok/go-http-metrics/metrics/prometheus"
	"github.com/slok/go-http-metrics/middleware"
	ginmiddleware "github.com/slok/go-http-metrics/middleware/gin"
)

var (
	httpMetrics     middleware.Middleware
	httpMetricsOnce sync.Once
)

func init() {
	prometheus.MustRegister(collectors.NewBuildInfoCollector())
}

// MetricMiddleware records request metrics labeled by handlerID, the
// recorder is shared since collectors can only be registered once.
func MetricMiddleware(handlerID string) gin.HandlerFunc {
	httpMetricsOnce.Do(func() {
		httpMetrics = middleware.New(middleware.Config{
			Recorder: metrics.NewRecorder(metrics.Config{
				Prefix:   "sqljieba",
				Registry: prometheus.DefaultRegisterer,
			}),
		})
	})
	return ginmiddleware.Handler(handlerID, httpMetrics)
}
