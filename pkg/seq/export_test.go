// Let test functions get at the nasty innards
package seq

var SetFastaRdSize = setFastaRdSize
