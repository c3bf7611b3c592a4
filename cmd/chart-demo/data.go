package main

import "github.com/lixenwraith/termchart/chart"

// Bell curve drawn by the bar chart pane
var barData = []chart.Point{
	{X: 0, Y: 0.4},
	{X: 10, Y: 2.9},
	{X: 20, Y: 13.5},
	{X: 30, Y: 41.1},
	{X: 40, Y: 80.1},
	{X: 50, Y: 100.0},
	{X: 60, Y: 80.1},
	{X: 70, Y: 41.1},
	{X: 80, Y: 13.5},
	{X: 90, Y: 2.9},
	{X: 100, Y: 0.4},
}

// Launch cost per kilogram by payload class, from
// https://ourworldindata.org/space-exploration-satellites
var heavyPayloadData = []chart.Point{
	{X: 1965, Y: 8200},
	{X: 1967, Y: 5400},
	{X: 1981, Y: 65400},
	{X: 1989, Y: 30800},
	{X: 1997, Y: 10200},
	{X: 2004, Y: 11600},
	{X: 2014, Y: 4500},
	{X: 2016, Y: 7900},
	{X: 2018, Y: 1500},
}

var mediumPayloadData = []chart.Point{
	{X: 1963, Y: 29500},
	{X: 1964, Y: 30600},
	{X: 1965, Y: 177900},
	{X: 1965, Y: 21000},
	{X: 1966, Y: 17900},
	{X: 1966, Y: 8400},
	{X: 1975, Y: 17500},
	{X: 1982, Y: 8300},
	{X: 1985, Y: 5100},
	{X: 1988, Y: 18300},
	{X: 1990, Y: 38800},
	{X: 1990, Y: 9900},
	{X: 1991, Y: 18700},
	{X: 1992, Y: 9100},
	{X: 1994, Y: 10500},
	{X: 1994, Y: 8500},
	{X: 1994, Y: 8700},
	{X: 1997, Y: 6200},
	{X: 1999, Y: 18000},
	{X: 1999, Y: 7600},
	{X: 1999, Y: 8900},
	{X: 1999, Y: 9600},
	{X: 2000, Y: 16000},
	{X: 2001, Y: 10000},
	{X: 2002, Y: 10400},
	{X: 2002, Y: 8100},
	{X: 2010, Y: 2600},
	{X: 2013, Y: 13600},
	{X: 2017, Y: 8000},
}

var smallPayloadData = []chart.Point{
	{X: 1961, Y: 118500},
	{X: 1962, Y: 14900},
	{X: 1975, Y: 21400},
	{X: 1980, Y: 32800},
	{X: 1988, Y: 31100},
	{X: 1990, Y: 41100},
	{X: 1993, Y: 23600},
	{X: 1994, Y: 20600},
	{X: 1994, Y: 34600},
	{X: 1996, Y: 50600},
	{X: 1997, Y: 19200},
	{X: 1997, Y: 45800},
	{X: 1998, Y: 19100},
	{X: 2000, Y: 73100},
	{X: 2003, Y: 11200},
	{X: 2008, Y: 12600},
	{X: 2010, Y: 30500},
	{X: 2012, Y: 20000},
	{X: 2013, Y: 10600},
	{X: 2013, Y: 34500},
	{X: 2015, Y: 10600},
	{X: 2018, Y: 23100},
	{X: 2019, Y: 17300},
}
