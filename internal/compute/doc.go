// Package compute provides the execution strategies a Jacobi pass can run
// under.
//
// A strategy only decides how the row index space of one pass is
// partitioned across workers:
//
//   - serial: single goroutine, rows in order
//   - cpu: static row chunks across runtime.NumCPU() workers
//   - fpga: pipelined row stream, one row per initiation (f32 only)
//   - cuda: device offload (stubbed out without the cuda build tag)
//
// All reads of a pass see the unmodified source buffer and all writes go to
// distinct cells of the destination buffer, so strategies need no locking,
// only the end-of-pass barrier that Run's return provides. Deterministic
// strategies produce bit-identical grids for a given precision.
package compute
