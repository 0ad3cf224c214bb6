package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

func writeTables(w io.Writer, algorithm requests.Algorithm, response responses.SimulationResponse) {
	fmt.Fprintf(w, "%s\n", algorithm)
	writeGantt(w, response.Gantt)
	writeSchedule(w, response)
	fmt.Fprintln(w)
}

func writeGantt(w io.Writer, gantt []responses.ExecutionSegment) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Start", "End", "Duration"})
	for _, s := range gantt {
		table.Append([]string{
			s.ProcessID,
			strconv.Itoa(s.Start),
			strconv.Itoa(s.End),
			strconv.Itoa(s.Duration()),
		})
	}
	table.Render()
}

func writeSchedule(w io.Writer, response responses.SimulationResponse) {
	rows := make([][]string, 0, len(response.PerProcess))
	for _, r := range response.PerProcess {
		priority := "-"
		if r.Priority != nil {
			priority = strconv.Itoa(*r.Priority)
		}
		rows = append(rows, []string{
			r.ID,
			priority,
			strconv.Itoa(r.Burst),
			strconv.Itoa(r.Arrival),
			strconv.Itoa(r.WaitingTime),
			strconv.Itoa(r.TurnaroundTime),
			strconv.Itoa(r.ResponseTime),
			strconv.Itoa(r.CompletionTime),
			strconv.Itoa(r.Preemptions),
		})
	}

	m := response.Metrics
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Response", "Exit", "Preemptions"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", m.AvgWaitingTime),
		fmt.Sprintf("Average\n%.2f", m.AvgTurnaroundTime),
		fmt.Sprintf("Average\n%.2f", m.AvgResponseTime),
		fmt.Sprintf("Makespan\n%d", m.Makespan),
		fmt.Sprintf("Throughput\n%.2f/t", m.Throughput)})
	table.Render()
}
