package util

import "cpu-scheduler/internal/responses"

func CalculateAverage(results []responses.ProcessResult) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(results) == 0 {
		return
	}

	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, result := range results {
		waitingTimeSum += float64(result.WaitingTime)
		responseTimeSum += float64(result.ResponseTime)
		turnAroundTimeSum += float64(result.TurnaroundTime)
	}

	processCount := float64(len(results))

	averageWaitingTime = waitingTimeSum / processCount
	averageResponseTime = responseTimeSum / processCount
	averageTurnAroundTime = turnAroundTimeSum / processCount
	return
}
