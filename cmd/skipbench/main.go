// skipbench loads a skip list with a configurable key distribution,
// times insert/get/delete passes, and prints summary tables alongside a
// structural report.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	randv2 "math/rand/v2"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/j-raghavan/skiplist"
	"github.com/j-raghavan/skiplist/analyzer"
	"github.com/j-raghavan/skiplist/stats"
)

func main() {
	var (
		n         int
		runs      int
		seed      int64
		p         float64
		maxHeight int
		dist      string
	)

	flag.IntVar(&n, "n", 100000, "number of keys per run")
	flag.IntVar(&runs, "runs", 3, "number of timed runs")
	flag.Int64Var(&seed, "seed", 42, "seed for key generation and level assignment")
	flag.Float64Var(&p, "p", skiplist.DefaultProbability, "per-level promotion probability")
	flag.IntVar(&maxHeight, "maxheight", skiplist.DefaultMaxHeight, "node height ceiling")
	flag.StringVar(&dist, "dist", "uniform", "key distribution: uniform, ascending, zipf")
	flag.Parse()

	if runs < 1 {
		runs = 1
	}

	keys, err := generateKeys(dist, n, seed)
	if err != nil {
		log.Fatalf("skipbench: %v", err)
	}

	fmt.Printf("keys: %d  dist: %s  p: %.2f  maxheight: %d  runs: %d\n\n",
		n, dist, p, maxHeight, runs)

	rows := make([][]string, 0, 3)
	var last *stats.Recorder[int, int]

	var insertTotal, getTotal, deleteTotal time.Duration
	for run := 0; run < runs; run++ {
		list, err := skiplist.New[int, int](
			skiplist.WithMaxHeight(maxHeight),
			skiplist.WithProbability(p),
			skiplist.WithRandSource(randv2.NewPCG(uint64(seed), uint64(run))),
		)
		if err != nil {
			log.Fatalf("skipbench: %v", err)
		}
		rec := stats.Wrap(list)

		for _, k := range keys {
			rec.Insert(k, k)
		}
		for _, k := range keys {
			rec.Get(k)
		}
		for _, k := range keys {
			rec.Delete(k)
		}

		snap := rec.Snapshot()
		insertTotal += snap.InsertTime
		getTotal += snap.GetTime
		deleteTotal += snap.DeleteTime

		// Reload so the structural report reflects a populated list.
		if run == runs-1 {
			for _, k := range keys {
				rec.Insert(k, k)
			}
			last = rec
		}
	}

	opsPerRun := int64(len(keys))
	rows = append(rows,
		summaryRow("insert", insertTotal, runs, opsPerRun),
		summaryRow("get", getTotal, runs, opsPerRun),
		summaryRow("delete", deleteTotal, runs, opsPerRun),
	)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Op", "Runs", "Avg(ms)", "Avg ns/op", "Ops/s"})
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()

	printReport(last.List())
}

func summaryRow(op string, total time.Duration, runs int, ops int64) []string {
	avg := total / time.Duration(runs)
	perOp := float64(avg.Nanoseconds()) / float64(ops)
	throughput := float64(ops) / avg.Seconds()
	return []string{
		op,
		fmt.Sprintf("%d", runs),
		fmt.Sprintf("%.3f", float64(avg.Microseconds())/1000.0),
		fmt.Sprintf("%.1f", perOp),
		fmt.Sprintf("%.0f", throughput),
	}
}

func printReport(list *skiplist.SkipList[int, int]) {
	report := analyzer.Analyze(list)

	fmt.Printf("\nnodes: %d  avg height: %.3f  level: %d/%d  link bytes: %d  fingerprint: %016x\n\n",
		report.NodeCount, report.AverageHeight, report.CurrentHeight,
		report.MaxHeight, report.LinkBytes, analyzer.Fingerprint(list))

	occupancy := analyzer.CumulativeLevels(report.LevelDistribution)

	rows := make([][]string, 0, len(report.LevelDistribution))
	for i := len(report.LevelDistribution) - 1; i >= 0; i-- {
		if occupancy[i] == 0 {
			continue
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", report.LevelDistribution[i]),
			fmt.Sprintf("%d", occupancy[i]),
		})
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Level", "Height ==", "Present"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

func generateKeys(dist string, n int, seed int64) ([]int, error) {
	keys := make([]int, n)
	switch dist {
	case "uniform":
		rng := rand.New(rand.NewSource(seed))
		for i := range keys {
			keys[i] = rng.Intn(n * 4)
		}
	case "ascending":
		for i := range keys {
			keys[i] = i
		}
	case "zipf":
		rng := rand.New(rand.NewSource(seed))
		zipf := rand.NewZipf(rng, 1.1, 1.0, uint64(n*4))
		for i := range keys {
			keys[i] = int(zipf.Uint64())
		}
	default:
		return nil, fmt.Errorf("unknown distribution %q", dist)
	}
	return keys, nil
}
